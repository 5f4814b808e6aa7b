// Package presenca guarda o sinal "online" dos colaboradores em Redis,
// fora do processo, para que a aplicação continue sem estado entre chamadas.
package presenca

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TTL do sinal de presença; o colaborador renova enquanto estiver ativo.
const TTLPadrao = 5 * time.Minute

type Store struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewStore conecta ao Redis a partir da URL (redis://host:porta).
func NewStore(redisURL string) (*Store, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao interpretar a URL do Redis: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("erro ao conectar no Redis: %w", err)
	}

	return NewStoreWithClient(client), nil
}

// NewStoreWithClient cria o store a partir de um cliente existente (testes).
func NewStoreWithClient(client *redis.Client) *Store {
	return &Store{client: client, prefix: "presenca:", ttl: TTLPadrao}
}

func (s *Store) key(colaboradorID uint) string {
	return fmt.Sprintf("%s%d", s.prefix, colaboradorID)
}

// MarcarOnline registra (ou renova) a presença do colaborador.
func (s *Store) MarcarOnline(ctx context.Context, colaboradorID uint) error {
	return s.client.Set(ctx, s.key(colaboradorID), "1", s.ttl).Err()
}

// MarcarOffline remove o sinal de presença.
func (s *Store) MarcarOffline(ctx context.Context, colaboradorID uint) error {
	return s.client.Del(ctx, s.key(colaboradorID)).Err()
}

// EstaOnline consulta a presença de um colaborador.
func (s *Store) EstaOnline(ctx context.Context, colaboradorID uint) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(colaboradorID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Close encerra a conexão.
func (s *Store) Close() error {
	return s.client.Close()
}
