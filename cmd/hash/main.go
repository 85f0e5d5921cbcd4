package main

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// Emits a ready-to-run INSERT for the users table, so a first account can
// be seeded before the register endpoint is reachable.
func main() {
	if len(os.Args) < 3 {
		fmt.Println("usage: go run ./cmd/hash <email> <password> [first] [last]")
		return
	}
	email, password := os.Args[1], os.Args[2]
	first, last := "Admin", "User"
	if len(os.Args) > 3 {
		first = os.Args[3]
	}
	if len(os.Args) > 4 {
		last = os.Args[4]
	}

	cost := bcrypt.DefaultCost
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < bcrypt.MinCost || n > bcrypt.MaxCost {
			fmt.Fprintf(os.Stderr, "invalid BCRYPT_COST %q\n", v)
			os.Exit(1)
		}
		cost = n
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("INSERT INTO users (email, password_hash, first_name, last_name)\nVALUES ('%s', '%s', '%s', '%s');\n",
		email, hash, first, last)
}
