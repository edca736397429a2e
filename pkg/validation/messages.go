package validation

const (
	MsgEmailShape    = "Do not jest, for this is not an electronic letter!"
	MsgEmailRequired = "We must know where to send our messages, so prithee, inform us."
	MsgPassword      = "I shall not reveal thy secret to anyone... mayhaps."
	MsgConfirm       = "Equality is the crux of this matter."
	MsgUsername      = "Every soul hath a name, and deserves to be called by it."
	MsgNickname      = "Disclose thy true identity, that we may know thee better!"
	MsgGender        = "Choose Male, Female, or Other, or leave it be."
	MsgAgreement     = "Thou canst not evade this, for it is thine obligation."
)

// rule messages keyed by form field, then by failing validator tag. The
// empty tag is the field's fallback.
var messages = map[string]map[string]string{
	"email": {
		"required": MsgEmailRequired,
		"email":    MsgEmailShape,
		"":         MsgEmailShape,
	},
	"password":  {"": MsgPassword},
	"confirm":   {"": MsgConfirm},
	"username":  {"": MsgUsername},
	"nickname":  {"": MsgNickname},
	"gender":    {"": MsgGender},
	"agreement": {"": MsgAgreement},
}

func messageFor(field, tag string) string {
	byTag, ok := messages[field]
	if !ok {
		return "This field is invalid."
	}
	if msg, ok := byTag[tag]; ok {
		return msg
	}
	return byTag[""]
}
