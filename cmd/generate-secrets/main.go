package main

import (
	"fmt"
	"log"

	"github.com/Adarshkumar111/Maintenance/internal/utils"
)

func main() {
	fmt.Println("===========================================")
	fmt.Println("Session Secret Generator for Maintenance Portal")
	fmt.Println("===========================================")
	fmt.Println()

	secret, err := utils.GenerateSessionSecret()
	if err != nil {
		log.Fatalf("Failed to generate secret: %v", err)
	}

	fmt.Println("Secret generated successfully!")
	fmt.Println()
	fmt.Println("Add this to your .env file:")
	fmt.Println()
	fmt.Printf("SESSION_SECRET=%s\n", secret)
	fmt.Println()
	fmt.Println("IMPORTANT: Keep this secret safe and never commit it to version control!")
	fmt.Println("===========================================")
}
