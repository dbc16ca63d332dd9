package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const maxSeedBytes = 64 << 10 // 64 KiB

// concreteScenarios mirrors the literal input/output examples the scanner
// and parser must handle end to end, used both as fuzz seeds and as an
// always-available corpus even when no testdata/*.sg tree exists.
var concreteScenarios = []string{
	"",
	"# just a comment\n",
	"1 + 2 * 3",
	"(1 + 2) * 3",
	"foo +2, b +3 | 0",
	"foo = () ->\n  hello()\nhi()",
	"a =\n  hello :\n    world : 2\n  hi:\n    welt: 3",
	"x for x in xs for xs in list",
	"if friday then jack else jill",
	"foo\n  20",
	"if friday then sue else joy else huh",
	"for 2*x,y in arr then x",
	"foo = ->\n ;a()",
	"a.b.c(1, 2).d",
	"x = { a: 1, b: 2 }",
	"loop\n  break",
	"until done\n  step()",
	"@name = 1",
	"foo(1, 2, 3)",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range concreteScenarios {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".sg" {
			return nil
		}
		// #nosec G304 -- path comes from a repository-local testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
