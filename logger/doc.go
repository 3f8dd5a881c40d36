// Package logger prints short messages behind colored level prompts and
// optionally follows them with a payload.
//
// # Console Output
//
// Every entry starts with a bold prompt such as "✔ [SUCCESS]" in the
// level's color, followed by the message in the same color:
//
//	 [DEBUG] DEBUG_msg
//	 [INFO] INFO_msg
//	⚠ [WARNING] WARNING_msg
//	✔ [SUCCESS] SUCCESS_msg
//	✖ [ERROR] ERROR_msg
//
// Colors are ANSI SGR sequences and always reset at the end of each span.
// Set Config.NoColor to strip them.
//
// # Payloads
//
// A short payload is printed on the prompt line after "msg: "; a long one,
// or any map, is printed on the following lines. Maps are pretty-printed
// as YAML with sorted keys; NaN becomes null and values without a plain
// representation are stringified. With type hinting on, the Go type of the
// payload follows on its own line.
//
// # Usage
//
// Construct a logger explicitly:
//
//	l := logger.New(logger.DefaultConfig())
//	l.Info("listening on", ":8080")
//	l.Success("loaded", map[string]any{"users": 42, "ratio": 0.5})
//
// Or initialize the process-wide default once at startup:
//
//	cfg := logger.DefaultConfig()
//	cfg.Level = "WARNING"
//	logger.Init(cfg)
//	logger.Warning("disk almost full", "93%")
//
// # Level Filtering
//
// Entries below the threshold are dropped before anything is rendered:
//
//	l.SetLevel(logger.ErrorLevel)
//	if err := l.SetLevelName("info"); err != nil { ... }
//
// Configuration can also be read from YAML with LoadConfig:
//
//	level: INFO
//	type_hinting: false
//	max_line_len: 100
package logger
