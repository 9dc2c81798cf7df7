package enum

type ActionType string

const (
	// shareholder takes up the full entitlement (optionally applying
	// for additional shares on top of it)
	FullAcceptance ActionType = "full_acceptance"
	// shareholder accepts part of the entitlement and renounces
	// (or trades) the remainder
	RenunciationPartial ActionType = "renunciation_partial"
)

func (a ActionType) Valid() bool {
	switch a {
	case FullAcceptance, RenunciationPartial:
		return true
	}
	return false
}

type SignatureType string

const (
	SingleSignature SignatureType = "single"
	JointSignature  SignatureType = "joint"
)

type SubmissionStatus string

const (
	SubmissionPending   SubmissionStatus = "pending"
	SubmissionCompleted SubmissionStatus = "completed"
	SubmissionRejected  SubmissionStatus = "rejected"
)

func (s SubmissionStatus) Valid() bool {
	switch s {
	case SubmissionPending, SubmissionCompleted, SubmissionRejected:
		return true
	}
	return false
}
