package ports

import "context"

// FileStorage abstrai o object storage onde ficam os PDFs de contratos
type FileStorage interface {
	// Upload valida e envia o arquivo, retornando a URL pública
	Upload(ctx context.Context, content []byte, contentType string, dealID int64, userID string) (string, error)
	// Delete remove o arquivo do usuário a partir da URL pública; falhas ou arquivos de terceiros retornam false
	Delete(ctx context.Context, fileURL, userID string) bool
	// CanReference informa se o usuário pode gravar a URL em um contrato:
	// URLs externas ao bucket são livres, URLs do bucket só sob o prefixo do usuário
	CanReference(fileURL, userID string) bool
}
