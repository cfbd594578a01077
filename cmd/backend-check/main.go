package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/MalithSamaradiwakara/frontend/internal/config"
	"github.com/MalithSamaradiwakara/frontend/internal/gateway"
	"github.com/MalithSamaradiwakara/frontend/internal/logger"
	"github.com/MalithSamaradiwakara/frontend/internal/model"
	"golang.org/x/term"
)

// backend-check probes the API gateway the frontend depends on. It
// verifies the catalog endpoint is reachable and, with --login, walks a
// full credential round trip. Exit code 0 means healthy, 1 means the
// backend is unreachable or rejected the probe.
func main() {
	withLogin := len(os.Args) > 1 && os.Args[1] == "--login"

	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.BackendTimeout)
	defer cancel()

	backend := gateway.NewClient(cfg, log)

	fmt.Printf("=== Backend Check (%s) ===\n", cfg.BackendBaseURL)

	// ─── Probe Catalog ─────────────────────────────────────────────────
	start := time.Now()
	courses, err := backend.ListCourses(ctx)
	if err != nil {
		fmt.Printf("FAIL: course catalog unreachable: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("OK: course catalog responded with %d courses in %s\n", len(courses), time.Since(start).Round(time.Millisecond))

	if !withLogin {
		return
	}

	// ─── Login Round Trip ──────────────────────────────────────────────
	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Enter Username: ")
	username, _ := reader.ReadString('\n')
	username = strings.TrimSpace(username)
	if username == "" {
		fmt.Println("Error: Username is required")
		os.Exit(1)
	}

	fmt.Print("Enter User Type (Student/Teacher/Admin): ")
	userType, _ := reader.ReadString('\n')
	userType = strings.TrimSpace(userType)
	if userType == "" {
		userType = "Student"
	}

	fmt.Print("Enter Password: ")
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		fmt.Println("\nError reading password")
		os.Exit(1)
	}
	fmt.Println() // Newline after password input

	seed, err := backend.Login(ctx, model.LoginRequest{
		Username: username,
		Password: string(bytePassword),
		UserType: userType,
	})
	if err != nil {
		fmt.Printf("FAIL: login rejected: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("OK: logged in as %s (%s)\n", seed.DisplayName, seed.Role)

	if model.ParseRole(seed.Role) == model.RoleStudent {
		details, err := backend.LoginDetails(gateway.WithBearer(ctx, seed.Token), seed.ActorID)
		if err != nil {
			fmt.Printf("FAIL: student detail lookup failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("OK: student record resolved (studentId=%s)\n", details.StudentID)
	}
}
