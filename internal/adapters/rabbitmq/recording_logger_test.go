package rabbitmq

import "catalog-service/internal/core/port"

type capturedLog struct {
	level  string
	msg    string
	fields map[string]interface{}
}

type recordingLogger struct {
	entries []capturedLog
}

func (r *recordingLogger) add(level, msg string, fields port.Fields) {
	r.entries = append(r.entries, capturedLog{level: level, msg: msg, fields: map[string]interface{}(fields)})
}

func (r *recordingLogger) Info(msg string, fields port.Fields)  { r.add("info", msg, fields) }
func (r *recordingLogger) Warn(msg string, fields port.Fields)  { r.add("warn", msg, fields) }
func (r *recordingLogger) Debug(msg string, fields port.Fields) { r.add("debug", msg, fields) }
func (r *recordingLogger) Error(msg string, err error, fields port.Fields) {
	r.add("error", msg, fields)
}
func (r *recordingLogger) WithFields(port.Fields) port.LoggerPort { return r }
