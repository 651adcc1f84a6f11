package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmtrinidad26/ScholarManager/app/config"
	"github.com/jmtrinidad26/ScholarManager/app/database"
	"github.com/jmtrinidad26/ScholarManager/app/models"
)

// Sample scholars for local development. Re-running the tool skips the ones
// already present.
var sampleStudents = []models.StudentInput{
	{StudentNumber: "02000221234", SchoolEmail: "juan.cruz@sti.edu", FirstName: "Juan", LastName: "Dela Cruz", Year: "3", Branch: "STI Ortigas-Cainta", Program: "BSCS", IsScholar: true},
	{StudentNumber: "02000562139", SchoolEmail: "john.nigos@sti.edu", FirstName: "John Martin", LastName: "Nigos", Year: "2", Branch: "STI Sta. Mesa", Program: "BSIT", IsScholar: true},
	{StudentNumber: "02000125678", SchoolEmail: "geguna.arvin@sti.edu", FirstName: "Geguna", LastName: "Arvin", Year: "4", Branch: "STI Sta. Mesa", Program: "BSIT", IsScholar: false},
	{StudentNumber: "02000674512", SchoolEmail: "dann.aguilar@sti.edu", FirstName: "Toyo Ashley", LastName: "Aguilar", Year: "1", Branch: "STI Sta. Mesa", Program: "BSIT", IsScholar: true},
	{StudentNumber: "02000304986", SchoolEmail: "trinidad.304986@ortigas-cainta.sti.edu.ph", FirstName: "Toyo", LastName: "Trinidad", Year: "2", Branch: "STI Sta. Mesa", Program: "BSIT", IsScholar: true},
}

func main() {
	config.LoadEnv()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	config.InitMongo(ctx)
	defer config.Close(ctx)

	store := database.NewMongoStudentStore(config.StudentsCollection())

	for _, in := range sampleStudents {
		input := in
		created, err := store.Create(ctx, &input)
		var conflict *database.ConflictError
		if errors.As(err, &conflict) {
			fmt.Printf("Skipping %s: already seeded\n", input.StudentNumber)
			continue
		}
		if err != nil {
			fmt.Printf("Error seeding %s: %v\n", input.StudentNumber, err)
			continue
		}
		fmt.Printf("Seeded %s %s (%s)\n", created.FirstName, created.LastName, created.StudentNumber)
	}
}
