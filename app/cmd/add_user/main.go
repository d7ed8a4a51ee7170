package main

import (
	"flag"
	"fmt"

	"psb-admin/app/config"
	"psb-admin/app/routes/auth"
)

func main() {
	email := flag.String("email", "", "email address for the new admin")
	password := flag.String("password", "", "initial password")
	firstName := flag.String("first", "", "first name")
	lastName := flag.String("last", "", "last name")
	role := flag.String("role", "admin", "role to grant (admin or super_admin)")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Println("Usage: add_user -email a@b.com -password secret [-first F] [-last L] [-role admin]")
		return
	}
	if *role != "admin" && *role != "super_admin" {
		fmt.Printf("Unknown role %q: must be admin or super_admin\n", *role)
		return
	}

	// Initialize database connection
	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	hashed, err := auth.HashPassword(*password)
	if err != nil {
		fmt.Printf("Error hashing password: %v\n", err)
		return
	}

	var userID string
	err = db.QueryRow(`
		INSERT INTO users (email, password, first_name, last_name, is_active)
		VALUES ($1, $2, $3, $4, true)
		RETURNING id`,
		*email, hashed, *firstName, *lastName,
	).Scan(&userID)
	if err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		return
	}

	_, err = db.Exec(`
		INSERT INTO user_roles (user_id, role_id)
		SELECT $1, id FROM roles WHERE name = $2
		ON CONFLICT DO NOTHING`,
		userID, *role,
	)
	if err != nil {
		fmt.Printf("Error granting role: %v\n", err)
		return
	}

	fmt.Printf("User created successfully: %s (%s, role %s)\n", *email, userID, *role)
}
