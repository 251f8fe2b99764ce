package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// confirm asks the operator a yes/no question on stdin. Anything other than
// yes declines; destructive commands never proceed by default.
func confirm(prompt string) bool {
	fmt.Printf("%s (yes/no): ", prompt)

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "yes" || answer == "y"
}
