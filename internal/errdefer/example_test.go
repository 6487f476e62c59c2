package errdefer_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mystic-pages/sitefix/internal/errdefer"
)

func writeDraft(dir, contents string) (_ string, err error) {
	f, err := os.CreateTemp(dir, "draft-*.html")
	if err != nil {
		return "", err
	}
	defer errdefer.Remove(&err, f.Name())
	defer errdefer.Close(&err, f)

	_, err = f.WriteString(contents)
	return f.Name(), err
}

func ExampleRemove() {
	dir, err := os.MkdirTemp("", "errdefer")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	path, err := writeDraft(dir, "<p>Hello</p>")
	if err != nil {
		panic(err)
	}
	fmt.Println(filepath.Ext(path))
	// Output: .html
}
