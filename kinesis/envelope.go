package kinesis

// Envelope is the signable query value handed to an external signer and
// transport: the canonical action name plus the already-encoded JSON body.
//
// Construction is pure and deterministic: the same command always yields
// the same envelope bytes. Callers must not mutate the body slice.
//
// It should only be constructed with BuildEnvelope or BuildQuery.
type Envelope struct {
	action Action
	body   []byte
}

// BuildEnvelope is a factory method for Envelope.
func BuildEnvelope(action Action, body []byte) Envelope {
	return Envelope{action: action, body: body}
}

// BuildQuery encodes a command and wraps it with its action into a
// signable envelope.
func BuildQuery(command Command) (Envelope, error) {
	body, err := command.EncodeBody()
	if err != nil {
		return Envelope{}, err
	}

	return BuildEnvelope(command.Action(), body), nil
}

func (e Envelope) Action() Action {
	return e.action
}

// Target returns the literal action name for the transport's routing
// header. Which header carries it is the transport's concern.
func (e Envelope) Target() string {
	return e.action.WireName()
}

func (e Envelope) Body() []byte {
	return e.body
}
