package signup

const (
	MsgLoading   = "Hold thee a moment, fair soul..."
	MsgSuccess   = "Rejoice, fair traveler, for thou hast attained the boon thou sought!"
	MsgRedirect  = "You are being redirected to the login page."
	MsgDuplicate = "A duplicate account with this username-address cannot persist."
	MsgServer    = "'Til the servers are up and the problem is gone."
	MsgRetry     = "Unhappily, try once more anon, at a later hour this task be done."

	TermsTitle = "Terms and Conditions"
	TermsBody  = "Verily, by submitting this form, thou dost accept the sacrifice of thine unborn child to the devil. " +
		"May God forbid thy sin and cleanse thy soul, for such a pact with the infernal powers canst bring naught but damnation upon thee."
	NicknameTooltip = "Thus shall others perceive thee, as portrayed herein."
)
