// gen-token prints a bearer token for the item API, signed with jwt.secret
// from the service configuration.
//
//	go run scripts/gen-token/main.go -sub alice -role admin
package main

import (
	"flag"
	"fmt"
	"os"

	"item-service/config"
	"item-service/pkg/scope"
)

func main() {
	sub := flag.String("sub", "dev", "token subject")
	role := flag.String("role", "admin", "token role")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		os.Exit(1)
	}

	manager, err := scope.New(cfg.JWT.Secret, cfg.JWT.TTL)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to initialize JWT manager:", err)
		os.Exit(1)
	}

	token, err := manager.CreateToken(*sub, *role)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to create token:", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
