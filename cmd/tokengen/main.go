// Command tokengen mints an access token from a secret, for testing guarded
// endpoints without going through signup or login.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/dmitrijs2005/authd/internal/server/auth"
)

func main() {
	var (
		secret  = flag.String("secret", "", "HMAC secret key (must match the server)")
		subject = flag.String("sub", "user-123", "Subject (user ID)")
		email   = flag.String("email", "user@example.com", "Email address")
		minutes = flag.Int("minutes", 15, "Token validity in minutes")
	)

	flag.Parse()

	if *secret == "" {
		log.Fatal("a secret is required (-secret)")
	}

	issuer := auth.NewTokenIssuer([]byte(*secret), time.Duration(*minutes)*time.Minute)

	token, err := issuer.Issue(*subject, *email)
	if err != nil {
		log.Fatalf("failed to sign token: %v", err)
	}

	fmt.Printf("Token: %s\n\n", token)
	fmt.Println("Usage:")
	fmt.Printf("  curl -H 'Authorization: Bearer %s' http://localhost:8000/users/profile\n", token)
}
