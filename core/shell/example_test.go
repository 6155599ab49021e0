package shell_test

import (
	"errors"
	"fmt"

	"github.com/josephlewis42/shtree/core/shell"
)

func ExampleParse() {
	n, err := shell.Parse("true && echo success || echo failure")
	if err != nil {
		panic(err)
	}
	fmt.Println(n)

	// Output: Operator("||", Operator("&&", Program["true"], Program["echo" "success"]), Program["echo" "failure"])
}

func ExampleParse_error() {
	_, err := shell.Parse("a |")
	fmt.Println(err)
	fmt.Println(errors.Is(err, shell.ErrStackUnderflow))

	// Output: 2: syntax error near "|": missing operand
	// true
}

func ExampleFormat() {
	fmt.Println(shell.Format(shell.MustParse("((a;b)||c)&&d")))

	// Output: (a; b) || c && d
}

func ExamplePprintAST() {
	fmt.Print(shell.PprintAST(shell.MustParse("grep -v '^#' /etc/somefile.conf | grep .")))

	// Output:
	// Operator "|"
	//   Program ["grep" "-v" "^#" "/etc/somefile.conf"]
	//   Program ["grep" "."]
}
