package cafe

type ErrResponse struct {
	Code    int    `json:"error_code"`
	Message string `json:"error_message"`
}

func (e ErrResponse) Error() string {
	return e.Message
}

var ErrResponseCafeEntryInvalid = ErrResponse{100, "the submitted cafe has invalid fields."}
var ErrResponseCafeNotFound = ErrResponse{101, "cafe not found"}
var ErrResponseCafeNameConflict = ErrResponse{102, "there is already a cafe with this name."}
var ErrResponseIdInvalidFormat = ErrResponse{103, "the endpoint is not a valid format ID. Must be an integer."}
var ErrResponseFormTokenInvalid = ErrResponse{104, "the form has expired, please submit it again."}
var ErrResponseStoredPriceInvalid = ErrResponse{105, "stored coffee price is not a valid amount."}
var ErrResponseFromRepository = ErrResponse{108, "repository error: "}
