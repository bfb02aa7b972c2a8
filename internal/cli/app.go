package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"go.uber.org/zap"

	"vaxsched/internal/errs"
	"vaxsched/internal/model"
	"vaxsched/internal/service"
)

const weakPasswordMsg = `Password is not strong enough. It must be:
a. At least 8 characters
b. A mixture of both uppercase and lowercase letters
c. A mixture of letters and numbers
d. Inclusion of at least one special character, from "!", "@", "#", "?"`

// App dispatches tokenized commands against the application services,
// holding the single active session.
type App struct {
	auth    service.AuthService
	sched   service.SchedulingService
	session Session
	out     io.Writer
	log     *zap.Logger
}

// NewApp constructs the command dispatcher.
func NewApp(auth service.AuthService, sched service.SchedulingService, out io.Writer, log *zap.Logger) *App {
	return &App{auth: auth, sched: sched, out: out, log: log}
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format+"\n", args...)
}

// Handlers print their result line and return a non-nil error only for
// storage faults, which terminate the loop.

func (a *App) createAccount(ctx context.Context, role model.Role, tokens []string) error {
	if len(tokens) != 3 {
		a.printf("Failed to create user.")
		return nil
	}
	username, password := tokens[1], tokens[2]

	err := a.auth.Register(ctx, role, username, password)
	switch {
	case err == nil:
		a.printf("Created user %s", username)
	case errors.Is(err, errs.ErrAlreadyExists):
		a.printf("Username taken, try again!")
	case errors.Is(err, errs.ErrWeakPassword):
		a.printf("%s", weakPasswordMsg)
	default:
		a.printf("Failed to create user.")
		return err
	}
	return nil
}

func (a *App) login(ctx context.Context, role model.Role, tokens []string) error {
	if a.session.Active() {
		a.printf("User already logged in.")
		return nil
	}
	if len(tokens) != 3 {
		a.printf("Login failed.")
		return nil
	}
	username, password := tokens[1], tokens[2]

	acc, err := a.auth.Authenticate(ctx, role, username, password)
	switch {
	case err == nil:
		a.session = Session{Role: role, Username: acc.Username}
		a.printf("Logged in as: %s", acc.Username)
	case errors.Is(err, errs.ErrUnauthorized):
		a.printf("Login failed.")
	default:
		a.printf("Login failed.")
		return err
	}
	return nil
}

func (a *App) searchSchedule(ctx context.Context, tokens []string) error {
	if !a.session.Active() {
		a.printf("Please login first")
		return nil
	}
	if len(tokens) != 2 {
		a.printf("Please try again!")
		return nil
	}
	day, err := service.ParseDay(tokens[1])
	if err != nil {
		a.printf("Please enter a valid date!")
		return nil
	}

	sched, err := a.sched.Search(ctx, day)
	if err != nil {
		a.printf("Please try again!")
		return err
	}
	for _, caregiver := range sched.Caregivers {
		a.printf("%s", caregiver)
	}
	for _, v := range sched.Vaccines {
		a.printf("%s %d", v.Name, v.Doses)
	}
	return nil
}

func (a *App) reserve(ctx context.Context, tokens []string) error {
	if !a.session.Active() {
		a.printf("Please login first")
		return nil
	}
	if !a.session.Is(model.RolePatient) {
		a.printf("Please login as a patient first!")
		return nil
	}
	if len(tokens) != 3 {
		a.printf("Please try again!")
		return nil
	}
	day, err := service.ParseDay(tokens[1])
	if err != nil {
		a.printf("Please enter a valid date!")
		return nil
	}
	vaccine := tokens[2]

	res, err := a.sched.Reserve(ctx, a.session.Username, day, vaccine)
	switch {
	case err == nil:
		a.printf("Appointment ID %d, Caregiver username %s", res.ID, res.Caregiver)
	case errors.Is(err, errs.ErrNoCaregiverAvailable):
		a.printf("No caregiver is available")
	case errors.Is(err, errs.ErrInsufficientDoses):
		a.printf("Not enough available doses")
	case errors.Is(err, errs.ErrConflict):
		a.printf("Slot was just taken, please try again!")
	default:
		a.printf("Please try again!")
		return err
	}
	return nil
}

func (a *App) uploadAvailability(ctx context.Context, tokens []string) error {
	if !a.session.Is(model.RoleCaregiver) {
		a.printf("Please login as a caregiver first!")
		return nil
	}
	if len(tokens) != 2 {
		a.printf("Please try again!")
		return nil
	}
	day, err := service.ParseDay(tokens[1])
	if err != nil {
		a.printf("Please enter a valid date!")
		return nil
	}

	if err := a.sched.PublishAvailability(ctx, a.session.Username, day); err != nil {
		a.printf("Upload Availability Failed")
		return err
	}
	a.printf("Availability uploaded!")
	return nil
}

func (a *App) cancel(ctx context.Context, tokens []string) error {
	if !a.session.Active() {
		a.printf("Please login first")
		return nil
	}
	if len(tokens) != 2 {
		a.printf("Please try again!")
		return nil
	}
	id, err := strconv.ParseInt(tokens[1], 10, 64)
	if err != nil || id <= 0 {
		a.printf("Please try again!")
		return nil
	}

	err = a.sched.Cancel(ctx, id, a.session.Role, a.session.Username)
	switch {
	case err == nil:
		a.printf("Appointment %d canceled successfully", id)
	case errors.Is(err, errs.ErrNotFound):
		a.printf("Appointment not found")
	case errors.Is(err, errs.ErrUnauthorized):
		a.printf("Unauthorized action")
	default:
		a.printf("Please try again!")
		return err
	}
	return nil
}

func (a *App) addDoses(ctx context.Context, tokens []string) error {
	if !a.session.Is(model.RoleCaregiver) {
		a.printf("Please login as a caregiver first!")
		return nil
	}
	if len(tokens) != 3 {
		a.printf("Please try again!")
		return nil
	}
	count, err := strconv.ParseInt(tokens[2], 10, 64)
	if err != nil || count <= 0 {
		a.printf("Please try again!")
		return nil
	}

	if err := a.sched.AddDoses(ctx, tokens[1], count); err != nil {
		a.printf("Error occurred when adding doses")
		return err
	}
	a.printf("Doses updated!")
	return nil
}

func (a *App) showAppointments(ctx context.Context) error {
	if !a.session.Active() {
		a.printf("Please login first")
		return nil
	}

	appts, err := a.sched.Appointments(ctx, a.session.Role, a.session.Username)
	if err != nil {
		a.printf("Please try again!")
		return err
	}
	if len(appts) == 0 {
		a.printf("No appointments found")
		return nil
	}
	for _, r := range appts {
		other := r.Caregiver
		if a.session.Is(model.RoleCaregiver) {
			other = r.Patient
		}
		a.printf("%d %s %s %s", r.ID, r.Vaccine, r.Day.Format(service.DayLayout), other)
	}
	return nil
}

func (a *App) logout() {
	if !a.session.Active() {
		a.printf("Please login first")
		return
	}
	a.session = Session{}
	a.printf("Successfully logged out")
}
