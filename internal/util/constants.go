package util

const TimeFormat = "2006-01-02 15:04:05"

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
	CacheNone   = "none"
)

const (
	MimePNG  = "image/png"
	MimeHTML = "text/html; charset=utf-8"
	MimeJSON = "application/json"
	MimeYAML = "application/x-yaml"
)
