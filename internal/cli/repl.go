package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"vaxsched/internal/model"
)

const banner = ` *** Please enter one of the following commands ***
> create_patient <username> <password>
> create_caregiver <username> <password>
> login_patient <username> <password>
> login_caregiver <username> <password>
> search_caregiver_schedule <mm-dd-yyyy>
> reserve <mm-dd-yyyy> <vaccine>
> upload_availability <mm-dd-yyyy>
> cancel <appointment_id>
> add_doses <vaccine> <number>
> show_appointments
> logout
> quit`

// Run reads commands line by line and dispatches them until quit, scanner
// EOF, or a storage fault. Domain failures print a message and keep the loop
// alive; anything else is logged and returned so the process can stop rather
// than continue against an indeterminate storage view.
func (a *App) Run(ctx context.Context, scanner *bufio.Scanner) error {
	a.printf("Welcome to the COVID-19 Vaccine Reservation Scheduling Application!")
	a.printf("%s", banner)

	for {
		fmt.Fprint(a.out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 {
			continue
		}

		var err error
		switch parseCommand(tokens[0]) {
		case cmdCreatePatient:
			err = a.createAccount(ctx, model.RolePatient, tokens)
		case cmdCreateCaregiver:
			err = a.createAccount(ctx, model.RoleCaregiver, tokens)
		case cmdLoginPatient:
			err = a.login(ctx, model.RolePatient, tokens)
		case cmdLoginCaregiver:
			err = a.login(ctx, model.RoleCaregiver, tokens)
		case cmdSearchSchedule:
			err = a.searchSchedule(ctx, tokens)
		case cmdReserve:
			err = a.reserve(ctx, tokens)
		case cmdUploadAvailability:
			err = a.uploadAvailability(ctx, tokens)
		case cmdCancel:
			err = a.cancel(ctx, tokens)
		case cmdAddDoses:
			err = a.addDoses(ctx, tokens)
		case cmdShowAppointments:
			err = a.showAppointments(ctx)
		case cmdLogout:
			a.logout()
		case cmdQuit:
			a.printf("Bye!")
			return nil
		default:
			a.printf("Invalid operation name!")
		}

		if err != nil {
			a.log.Error("storage unavailable", zap.String("command", tokens[0]), zap.Error(err))
			return err
		}
	}
}
