// Package migrations 内嵌的goose SQL迁移脚本
//
// 每种数据库一个目录，文件名格式：<版本号>_<描述>.sql
package migrations

import "embed"

// FS 包含mysql/和postgres/两个目录
//
//go:embed mysql/*.sql postgres/*.sql
var FS embed.FS
