// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) for the catalog pipeline CLI.
//
// # Faction Scoping
//
// A compile run processes many factions in sequence. The WithFaction helper
// attaches the faction name to the log entry, ensuring that all logs related
// to one faction's documents can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Compile started")
//
//	// While processing one faction:
//	l := logger.WithFaction(log, "Space Marines")
//	l.Warn("Document missing", zap.String("document", name))
package logger
