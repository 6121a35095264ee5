package systems

import "go.uber.org/zap"

var logger = zap.NewNop()

// SetLogger routes simulation logs to l. A nil logger silences them.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

func fighterFields(slot int, character string) []zap.Field {
	return []zap.Field{zap.Int("slot", slot), zap.String("character", character)}
}
