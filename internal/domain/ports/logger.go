package ports

// Logger é o log estruturado usado por services e infraestrutura.
// args são pares chave-valor no formato do log/slog ("usuario_id", 7).
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	// With devolve um Logger que acrescenta args a toda entrada
	With(args ...any) Logger
}
