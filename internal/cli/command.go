package cli

// command is the typed form of the first input token.
type command int

const (
	cmdUnknown command = iota
	cmdCreatePatient
	cmdCreateCaregiver
	cmdLoginPatient
	cmdLoginCaregiver
	cmdSearchSchedule
	cmdReserve
	cmdUploadAvailability
	cmdCancel
	cmdAddDoses
	cmdShowAppointments
	cmdLogout
	cmdQuit
)

var commandNames = map[string]command{
	"create_patient":            cmdCreatePatient,
	"create_caregiver":          cmdCreateCaregiver,
	"login_patient":             cmdLoginPatient,
	"login_caregiver":           cmdLoginCaregiver,
	"search_caregiver_schedule": cmdSearchSchedule,
	"reserve":                   cmdReserve,
	"upload_availability":       cmdUploadAvailability,
	"cancel":                    cmdCancel,
	"add_doses":                 cmdAddDoses,
	"show_appointments":         cmdShowAppointments,
	"logout":                    cmdLogout,
	"quit":                      cmdQuit,
}

// parseCommand maps an operation token to its typed command.
func parseCommand(name string) command {
	if c, ok := commandNames[name]; ok {
		return c
	}
	return cmdUnknown
}
