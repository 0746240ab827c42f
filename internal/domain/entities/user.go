package entities

// AuthUser representa o usuário autenticado extraído do token.
// A identidade vem do provedor de autenticação; não existe tabela de usuários.
type AuthUser struct {
	ID     string
	Email  string
	Claims map[string]interface{}
}

