package postgres

import (
	"log"
	"os"
	"testing"

	"github.com/joho/godotenv"
)

func TestMain(m *testing.M) {
	// Load .env from the project root so integration tests can find the DB.
	if err := godotenv.Load("../../../../.env"); err != nil {
		log.Println("warning: .env not loaded:", err)
	}

	os.Exit(m.Run())
}
