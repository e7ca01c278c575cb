// Package schemas хранит JSON Schema контрактов сообщений, которые публикует сервис.
package schemas

import "embed"

//go:embed events
var SchemasFS embed.FS
