package documento

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Storage abstrai o armazenamento de objetos dos documentos.
type Storage interface {
	Enviar(ctx context.Context, nomeArquivo, contentType string, tamanho int64, conteudo io.Reader) (chave string, err error)
	URLDownload(ctx context.Context, chave string) (string, error)
}

// MinioStorage guarda os arquivos em um bucket S3-compatível.
type MinioStorage struct {
	client *minio.Client
	bucket string
}

// NewMinioStorage conecta ao MinIO e garante que o bucket exista.
func NewMinioStorage(endpoint, accessKey, secretKey, bucket string, useSSL bool) (*MinioStorage, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao conectar no MinIO: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("erro ao verificar bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("erro ao criar bucket: %w", err)
		}
	}

	return &MinioStorage{client: client, bucket: bucket}, nil
}

func (s *MinioStorage) Enviar(ctx context.Context, nomeArquivo, contentType string, tamanho int64, conteudo io.Reader) (string, error) {
	chave := fmt.Sprintf("%s/%s", uuid.NewString(), nomeArquivo)
	_, err := s.client.PutObject(ctx, s.bucket, chave, conteudo, tamanho, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("erro ao enviar objeto: %w", err)
	}
	return chave, nil
}

// URLDownload gera uma URL pré-assinada válida por 15 minutos.
func (s *MinioStorage) URLDownload(ctx context.Context, chave string) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, s.bucket, chave, 15*time.Minute, url.Values{})
	if err != nil {
		return "", fmt.Errorf("erro ao gerar URL de download: %w", err)
	}
	return u.String(), nil
}
