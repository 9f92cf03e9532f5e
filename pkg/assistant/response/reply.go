package response

// Reply is what the engine sends back for one inbound message.
// Image is a catalog-relative path; transports turn it into a URL.
type Reply struct {
	Text  string `json:"text"`
	Image string `json:"image,omitempty"`
}
