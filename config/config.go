package config

import (
	"os"
	"strconv"
	"strings"
)

var (
	TLS_DOMAINS  = ""               // e.g. "studio.example.com"
	MYSQL_DSN    = ""               // MySQL will be used if this is set
	SQLITE_FILE  = "photostudio.db" // SQLite will be used if MYSQL_DSN is not configured
	BIND_ADDRESS = "0.0.0.0:8080"
	UPLOAD_DIR   = "static/uploads" // Local directory for uploaded images (disk storage)
	S3_BUCKET    = ""               // Uploads go to S3 instead of disk if this is set
	S3_REGION    = "us-east-1"
	S3_AUTH      = "" // "key:secret"
	TMP_DIR      = "/tmp"
	DEBUG_MODE   = true
	// Session cookie signing key. Leave empty to generate a random one on
	// every start (which invalidates all sessions on restart).
	SESSION_KEY = ""
	// Security posture toggles
	LOGIN_RATE_LIMIT    = true // max 5 login attempts per minute per client address
	PASSWORD_COMPLEXITY = true // require upper+lower+digit+punctuation on registration
	THUMB_SIZE          = 640  // longest side of generated thumbnails, in pixels
)

func init() {
	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvString("UPLOAD_DIR", &UPLOAD_DIR)
	readEnvString("S3_BUCKET", &S3_BUCKET)
	readEnvString("S3_REGION", &S3_REGION)
	readEnvString("S3_AUTH", &S3_AUTH)
	readEnvString("TMP_DIR", &TMP_DIR)
	readEnvString("SESSION_KEY", &SESSION_KEY)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
	readEnvBool("LOGIN_RATE_LIMIT", &LOGIN_RATE_LIMIT)
	readEnvBool("PASSWORD_COMPLEXITY", &PASSWORD_COMPLEXITY)
	readEnvInt("THUMB_SIZE", &THUMB_SIZE)
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}

func readEnvInt(name string, value *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	f, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*value = f
}
