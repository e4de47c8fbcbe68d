package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB — ограничение для тестового корпуса
)

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	addGrammarSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.def файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".def" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

// addGrammarSeeds covers recovery paths: truncated blocks, stray symbols
// and unterminated comments.
func addGrammarSeeds(f *testing.F) {
	for _, s := range []string{
		"",
		"DEVICES",
		"DEVICES:",
		"DEVICES: A = ",
		"DEVICES: A = AND<",
		"DEVICES: A = AND<2",
		"DEVICES: A, = AND<2>;",
		"DEVICES: A = AND<2>; CONNECTIONS",
		"DEVICES: A = AND<2>; CONNECTIONS: A -",
		"DEVICES: A = AND<2>; CONNECTIONS: A - A.",
		"DEVICES: A = AND<2>; CONNECTIONS: A - A.I1 MONITORS: A;",
		"DEVICES: A = DTYPE; CONNECTIONS: A.Q - A.DATA; MONITORS: A.QBAR, A.Q",
		"CONNECTIONS: MONITORS:",
		"DEVICES: /* never closes",
		"DEVICES: $$ A = !! NOT;",
		"DEVICES: A = SWITCH<99999999999999999999999>;",
		"; ; ; DEVICES ; ; CONNECTIONS ; ; MONITORS ; ;",
		"DEVICES: A = AND<２>;",
		"DEVICES: C = CLOCK<٣>; !²",
	} {
		f.Add([]byte(s))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
