package main

import (
	"flag"
	"log"

	"citadel_backend/internal/service"
)

// Mints a bearer token for an identity, for poking the API by hand.
// Requires the same JWT_SECRET the server runs with.
func main() {
	identity := flag.String("identity", "", "identity id to mint a token for")
	flag.Parse()

	if *identity == "" {
		log.Fatal("usage: mint_token -identity <id>")
	}

	service.InitJWT()
	token, err := service.GenerateJWT(*identity)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}
	log.Printf("token=%s\n", token)
}
