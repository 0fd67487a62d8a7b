package scrape

// NA marks a field that could not be extracted or parsed. Records always
// carry all twelve fields so tabular writes stay shape-stable.
const NA = "N/A"

type JobRecord struct {
	Service         string
	WorkOrder       string // business key for dedup against the sheet
	CustomerName    string
	CustomerPhone   string
	StreetAddress   string
	City            string
	State           string
	ZipCode         string
	Country         string
	AppointmentDate string
	AppointmentTime string
	JobDescription  string
}

// Header lists the sheet columns in write order.
func Header() []string {
	return []string{
		"Service",
		"Work Order",
		"Name",
		"Phone",
		"Street Address",
		"City",
		"State",
		"ZIP",
		"Country",
		"Appointment Date",
		"Appointment Time",
		"Job Description",
	}
}

// Fields returns the record's values in Header order. The sheet is
// schema-less and trusts positional order, so this must stay in sync
// with Header.
func (r JobRecord) Fields() []string {
	return []string{
		r.Service,
		r.WorkOrder,
		r.CustomerName,
		r.CustomerPhone,
		r.StreetAddress,
		r.City,
		r.State,
		r.ZipCode,
		r.Country,
		r.AppointmentDate,
		r.AppointmentTime,
		r.JobDescription,
	}
}
