package scrape

import "context"

// Detail-view locators. The portal renders some values inside a container
// whose <h6> holds the label, so those need the label stripped afterwards.
const (
	locService       = "//div[@id='jobPage.jobDetails']//div[h6[contains(text(), 'Service:')]]"
	locWorkOrder     = "//div[@id='jobPage.jobDetails']//div[h6[contains(text(), 'Work Order:')]]"
	locCustomerName  = "//div[@id='jobPage.customerInfo']//div[h6[contains(text(), 'Name:')]]"
	locCustomerPhone = "//div[@id='jobPage.customerInfo']//div[h6[contains(text(), 'Phone:')]]"
	locDescription   = "//div[@id='jobPage.description']//div[contains(@class, 'text-body-long')]"
	locApptDate      = "//div[@data-testid='jobDetail.appointmentTime']//div[1]"
	locApptTime      = "//div[@data-testid='jobDetail.appointmentTime']//div[2]"
	locStreet        = "//div[@data-testid='address.street']"
	locCityStateZip  = "//div[contains(@class, '_cityStateZip')]"
)

// BuildRecord extracts one JobRecord from the currently open detail view.
// It never fails: every missing field degrades to NA and a fully blank
// detail view yields an all-NA record.
func BuildRecord(ctx context.Context, b TextFinder) JobRecord {
	cityStateZip := extractText(ctx, b, locCityStateZip)
	city, state, zip := ParseCityStateZip(cityStateZip)

	return JobRecord{
		Service:         stripLabel(extractText(ctx, b, locService), "Service:"),
		WorkOrder:       stripLabel(extractText(ctx, b, locWorkOrder), "Work Order:"),
		CustomerName:    stripLabel(extractText(ctx, b, locCustomerName), "Name:"),
		CustomerPhone:   stripLabel(extractText(ctx, b, locCustomerPhone), "Phone:"),
		StreetAddress:   extractText(ctx, b, locStreet),
		City:            city,
		State:           state,
		ZipCode:         zip,
		Country:         "US",
		AppointmentDate: extractText(ctx, b, locApptDate),
		AppointmentTime: extractText(ctx, b, locApptTime),
		JobDescription:  extractText(ctx, b, locDescription),
	}
}
