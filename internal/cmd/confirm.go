package cmd

import (
	"bufio"
	"os"
	"strings"

	"github.com/fatih/color"
)

// confirmStdin presents a yes/no prompt on stdin and reports the answer.
// Anything other than y/yes is a no. Blocks until a line arrives.
func confirmStdin(question string) bool {
	color.New(color.Bold).Printf("%s [y/N]: ", question)
	reader := bufio.NewReader(os.Stdin)
	answer, _ := reader.ReadString('\n')
	answer = strings.TrimSpace(strings.ToLower(answer))
	return answer == "y" || answer == "yes"
}
