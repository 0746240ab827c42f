package ports

// Logger define a interface de logging estruturado usada por services e handlers.
// Os args variádicos são pares chave-valor: logger.Info("deal created", "deal_id", id)
type Logger interface {
	Info(msg string, args ...any)
	Error(msg string, args ...any)
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
	With(args ...any) Logger
}
