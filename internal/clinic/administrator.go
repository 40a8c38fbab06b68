package clinic

// Administrator is the only orchestrator in the model: it registers
// patients, books appointments and processes payments.
type Administrator struct {
	Employee
	WorkTime string
}

func NewAdministrator(firstName, lastName, phone, workTime string) *Administrator {
	return &Administrator{
		Employee: newEmployee(firstName, lastName, phone),
		WorkTime: workTime,
	}
}

// RegisterPatient constructs a patient and immediately attaches a medical
// record built from the supplied blood type and allergy text. The caller
// retains the returned patient; registration itself keeps no directory.
func (a *Administrator) RegisterPatient(firstName, lastName, phone, insurance, bloodType, allergies string) *Patient {
	p := NewPatient(firstName, lastName, phone, insurance)
	p.SetRecord(NewMedicalRecord(bloodType, allergies))
	return p
}

// CreateAppointment books the first slot that can actually be reserved:
// doctors are scanned in the order the service added them, each doctor's
// open slots in calendar add order, and the first successful reservation
// wins. First-fit, no comparison of alternatives.
func (a *Administrator) CreateAppointment(patient *Patient, service *Service) (*Appointment, error) {
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	if service == nil {
		return nil, ErrServiceNotFound
	}

	for _, doc := range service.AvailableDoctors() {
		for _, slot := range doc.SlotsAvailable() {
			if !slot.Reserve() {
				// lost the race for this slot, try the next one
				continue
			}
			appt := NewAppointment(patient, doc, service, slot)
			if rec := patient.Record(); rec != nil {
				rec.AddAppointment(appt)
			}
			return appt, nil
		}
	}

	return nil, ErrNoAvailability
}

// ProcessPayment creates a payment for the appointment's service cost,
// processes it and links it onto the appointment.
func (a *Administrator) ProcessPayment(appt *Appointment) (*Payment, error) {
	if appt == nil {
		return nil, ErrAppointmentNotFound
	}

	payment := NewPayment(appt.ServiceCost())
	if err := appt.AttachPayment(payment); err != nil {
		return nil, err
	}
	if err := payment.MarkProcessed(); err != nil {
		return nil, err
	}
	return payment, nil
}
