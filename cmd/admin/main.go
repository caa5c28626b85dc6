package main

import (
	"fmt"
	"log"
	"os"

	"greensentinel/backend/internal/catalog"
	"greensentinel/backend/internal/models"
	"greensentinel/backend/internal/policy"
	"greensentinel/backend/internal/storage"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	storageSvc := storage.NewStorageService(db, nil) // No redis needed for admin CLI

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <command> [args]")
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "promote":
		if len(os.Args) != 5 {
			fmt.Println("Usage: admin promote <email> <state> <region>")
			os.Exit(1)
		}
		email, state, region := os.Args[2], os.Args[3], os.Args[4]
		if err := promoteAuthority(storageSvc, email, state, region); err != nil {
			log.Fatalf("Error promoting user: %v", err)
		}
		fmt.Printf("User %s is now an authority for %s (%s).\n", email, region, state)
	case "mark-spam":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin mark-spam <complaint_id>")
			os.Exit(1)
		}
		if err := setSpam(storageSvc, os.Args[2], true); err != nil {
			log.Fatalf("Error marking complaint as spam: %v", err)
		}
		fmt.Printf("Complaint %s marked as spam.\n", os.Args[2])
	case "unmark-spam":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin unmark-spam <complaint_id>")
			os.Exit(1)
		}
		if err := setSpam(storageSvc, os.Args[2], false); err != nil {
			log.Fatalf("Error unmarking complaint: %v", err)
		}
		fmt.Printf("Complaint %s moved back to %q.\n", os.Args[2], models.StatusYetToLook)
	case "spam-standing":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin spam-standing <email>")
			os.Exit(1)
		}
		if err := showSpamStanding(storageSvc, os.Args[2]); err != nil {
			log.Fatalf("Error reading spam standing: %v", err)
		}
	default:
		fmt.Println("Unknown command")
		os.Exit(1)
	}
}

func promoteAuthority(s storage.Storage, email, state, region string) error {
	if !catalog.ValidRegion(state, region) {
		return fmt.Errorf("region %q is not in the catalog for state %q", region, state)
	}
	user, err := s.GetUserByEmail(email)
	if err != nil {
		return err
	}
	return s.UpdateUserFields(user.UID, map[string]interface{}{
		"role":   models.RoleAuthority,
		"state":  state,
		"region": region,
	})
}

// setSpam flips a complaint in or out of spam, keeping the author's spam
// set in step. Mirrors the service transition but bypasses the region gate;
// this is an operator tool.
func setSpam(s storage.Storage, complaintID string, spam bool) error {
	c, err := s.GetComplaintByID(complaintID)
	if err != nil {
		return err
	}

	if spam {
		if err := s.UpdateComplaintStatus(c.ID, models.StatusSpam); err != nil {
			return err
		}
		return s.AddSpamComplaint(c.UserUID, c.ID)
	}

	if c.Status != models.StatusSpam {
		return fmt.Errorf("complaint %s is not marked as spam (current status %q)", c.ID, c.Status)
	}
	if err := s.UpdateComplaintStatus(c.ID, models.StatusYetToLook); err != nil {
		return err
	}
	return s.RemoveSpamComplaint(c.UserUID, c.ID)
}

func showSpamStanding(s storage.Storage, email string) error {
	user, err := s.GetUserByEmail(email)
	if err != nil {
		return err
	}
	fmt.Printf("User %s (%s): %d spam complaints, spammer=%v\n",
		user.Email, user.UID, len(user.SpamComplaints), policy.IsSpammer(user))
	for _, id := range user.SpamComplaints {
		fmt.Printf("  - %s\n", id)
	}
	return nil
}
