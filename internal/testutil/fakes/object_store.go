// Package fakes reúne dublês de dependências externas usados nos testes
package fakes

import (
	"context"
	"io"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectStore é um bucket S3 em memória
type ObjectStore struct {
	mu        sync.Mutex
	objects   map[string][]byte
	PutErr    error
	DeleteErr error
	Puts      int
	Deletes   int
}

// NewObjectStore cria um bucket vazio
func NewObjectStore() *ObjectStore {
	return &ObjectStore{objects: map[string][]byte{}}
}

func (f *ObjectStore) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Puts++
	if f.PutErr != nil {
		return nil, f.PutErr
	}
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Key)] = body
	return &s3.PutObjectOutput{}, nil
}

func (f *ObjectStore) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Deletes++
	if f.DeleteErr != nil {
		return nil, f.DeleteErr
	}
	delete(f.objects, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

// Object retorna o conteúdo gravado em key
func (f *ObjectStore) Object(key string) ([]byte, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, ok := f.objects[key]
	return data, ok
}

// Len retorna o número de objetos no bucket
func (f *ObjectStore) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.objects)
}
