package domain

// Toast texts shown after form submissions.
const (
	MsgRequiredFields     = "Please fill in all required fields"
	MsgProviderRegistered = "Registration successful! You can now be found by customers."
	MsgReviewSubmitted    = "Review submitted successfully!"
	MsgReminderSet        = "Reminder set successfully!"
	MsgReminderDeleted    = "Reminder deleted"
	MsgContactSent        = "Message sent successfully! We will get back to you soon."
)
