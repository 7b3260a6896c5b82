package ports

// TokenService emite e verifica tokens de acesso
type TokenService interface {
	Issue(subject string) (string, error)
	Verify(token string) (string, error)
}
