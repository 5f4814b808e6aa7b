// Package relatorio gera planilhas Excel para o painel administrativo.
package relatorio

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/danilolimaCabral/contexto-contabil-sub000/internal/agendamento"
	"github.com/danilolimaCabral/contexto-contabil-sub000/internal/lead"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// Handler encapsula DB e os repositories das entidades exportadas
type Handler struct {
	DB           *gorm.DB
	Leads        lead.Repository
	Agendamentos agendamento.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:           db,
		Leads:        lead.NewRepository(),
		Agendamentos: agendamento.NewRepository(),
	}
}

func escreverCabecalho(f *excelize.File, planilha string, colunas []string) {
	for i, c := range colunas {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(planilha, cell, c)
	}
}

func enviarPlanilha(w http.ResponseWriter, f *excelize.File, nome string) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, nome))
	if err := f.Write(w); err != nil {
		log.Printf("Erro ao enviar planilha %s: %v", nome, err)
	}
}

// ExportarLeads gera a planilha com todos os leads (admin).
func (h *Handler) ExportarLeads(w http.ResponseWriter, r *http.Request) {
	leads, err := h.Leads.ListarTodos(h.DB)
	if err != nil {
		http.Error(w, "erro ao listar leads", http.StatusInternalServerError)
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	planilha := f.GetSheetName(0)

	escreverCabecalho(f, planilha, []string{"ID", "Nome", "Email", "Telefone", "Empresa", "Origem", "Status", "Criado em"})
	for i, l := range leads {
		linha := i + 2
		valores := []interface{}{l.ID, l.Nome, l.Email, l.Telefone, l.Empresa, l.Source, l.Status, l.CreatedAt.Format("02/01/2006 15:04")}
		for j, v := range valores {
			cell, _ := excelize.CoordinatesToCellName(j+1, linha)
			f.SetCellValue(planilha, cell, v)
		}
	}

	enviarPlanilha(w, f, fmt.Sprintf("leads-%s.xlsx", time.Now().Format("2006-01-02")))
}

// ExportarAgendamentos gera a planilha com todos os agendamentos (admin).
func (h *Handler) ExportarAgendamentos(w http.ResponseWriter, r *http.Request) {
	ags, err := h.Agendamentos.ListarTodos(h.DB)
	if err != nil {
		http.Error(w, "erro ao listar agendamentos", http.StatusInternalServerError)
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	planilha := f.GetSheetName(0)

	escreverCabecalho(f, planilha, []string{"ID", "Nome", "Email", "Telefone", "Data", "Duração (min)", "Assunto", "Status"})
	for i, a := range ags {
		linha := i + 2
		valores := []interface{}{a.ID, a.Nome, a.Email, a.Telefone, a.DataAgendada.Format("02/01/2006 15:04"), a.Duracao, a.Assunto, a.Status}
		for j, v := range valores {
			cell, _ := excelize.CoordinatesToCellName(j+1, linha)
			f.SetCellValue(planilha, cell, v)
		}
	}

	enviarPlanilha(w, f, fmt.Sprintf("agendamentos-%s.xlsx", time.Now().Format("2006-01-02")))
}
