package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"storage": map[string]any{"driver": "mongo"},
		"mongo":   map[string]any{"uri": "", "database": "planner"},
		"postgres": map[string]any{
			"sslMode": "disable",
			"master":  map[string]any{"userName": "user"},
		},
		"auth": map[string]any{
			"tokenSecret": "",
			"tokenTTL":    "2h",
			"bcryptCost":  10,
		},
		"keepAlive": map[string]any{
			"url":             "",
			"defaultDuration": "60m",
		},
	}

	cases := map[string]string{
		"STORAGE_DRIVER":            "storage.driver",
		"MONGO_URI":                 "mongo.uri",
		"POSTGRES_SSLMODE":          "postgres.sslMode",
		"POSTGRES_MASTER_USERNAME":  "postgres.master.userName",
		"AUTH_TOKENSECRET":          "auth.tokenSecret",
		"AUTH_BCRYPTCOST":           "auth.bcryptCost",
		"KEEPALIVE_URL":             "keepAlive.url",
		"KEEPALIVE_DEFAULTDURATION": "keepAlive.defaultDuration",
		"PLANNER_UNKNOWN_FLAG":      "planner.unknown.flag",
	}

	for envKey, want := range cases {
		t.Run(envKey, func(t *testing.T) {
			assert.Equal(t, want, canonicalizeEnvKey(envKey, existing))
		})
	}
}
