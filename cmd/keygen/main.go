// Command keygen prints the bcrypt hash of an API key, for use as the
// server's API_KEY_HASH environment value.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/calverts/userhub/internal/security"
)

func main() {
	var key string

	if len(os.Args) > 1 {
		key = os.Args[1]
	} else {
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')

		if err != nil && line == "" {
			fmt.Fprintln(os.Stderr, "usage: keygen <api-key>   (or pipe the key on stdin)")
			os.Exit(2)
		}
		key = strings.TrimRight(line, "\r\n")
	}

	if key == "" {
		fmt.Fprintln(os.Stderr, "api key must not be empty")
		os.Exit(2)
	}

	hash, err := security.HashAPIKey(key)

	if err != nil {
		fmt.Fprintln(os.Stderr, "hash:", err)
		os.Exit(1)
	}

	fmt.Println(hash)
}
