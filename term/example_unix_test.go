//go:build linux || darwin

package term_test

import (
	"errors"
	"fmt"
	"os"

	"github.com/souhoc/readkey/term"
)

func ExampleReadKey() {
	r, w, err := os.Pipe()
	if err != nil {
		panic(err)
	}
	defer r.Close()

	w.Write([]byte{0})
	w.Close()

	for {
		b, err := term.ReadKey(int(r.Fd()))
		if errors.Is(err, term.ErrEndOfInput) {
			fmt.Println("end of input")
			return
		}
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println(term.KeyName(b))
	}
	// Output:
	// NUL
	// end of input
}
