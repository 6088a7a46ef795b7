package testdb

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// LoadSQL runs every statement of each script in one transaction, in file
// order. The scripts reset tables between integration tests.
func LoadSQL(t testing.TB, db *gorm.DB, paths ...string) {
	t.Helper()
	var stmts []string
	for _, path := range paths {
		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		stmts = append(stmts, SplitStatements(string(raw))...)
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, stmt := range stmts {
			if err := tx.Exec(stmt).Error; err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err, "load %v", paths)
}

// SplitStatements cuts a script on semicolons outside quotes. Lines
// starting with "--" and empty statements are dropped.
func SplitStatements(script string) []string {
	var (
		out   []string
		cur   strings.Builder
		quote rune
	)
	flush := func() {
		if s := strings.TrimSpace(cur.String()); s != "" {
			out = append(out, s)
		}
		cur.Reset()
	}

	for _, line := range strings.Split(script, "\n") {
		if quote == 0 && strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		for _, r := range line {
			switch {
			case quote != 0:
				if r == quote {
					quote = 0
				}
			case r == '\'' || r == '"' || r == '`':
				quote = r
			case r == ';':
				flush()
				continue
			}
			cur.WriteRune(r)
		}
		cur.WriteRune('\n')
	}
	flush()
	return out
}
