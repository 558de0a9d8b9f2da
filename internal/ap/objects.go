package ap

// ActorPayload is the shape fetched when dereferencing an actor IRI.
type ActorPayload struct {
	AtContext         any       `json:"@context,omitempty"`
	ID                string    `json:"id"`
	Type              string    `json:"type"`
	PreferredUsername string    `json:"preferredUsername"`
	Inbox             string    `json:"inbox"`
	Outbox            string    `json:"outbox,omitempty"`
	Followers         string    `json:"followers,omitempty"`
	Endpoints         Endpoints `json:"endpoints,omitempty"`
	PublicKey         PublicKey `json:"publicKey"`
}

type Endpoints struct {
	SharedInbox string `json:"sharedInbox,omitempty"`
}

type PublicKey struct {
	ID           string `json:"id"`
	Owner        string `json:"owner"`
	PublicKeyPem string `json:"publicKeyPem"`
}

// VideoPayload is the shape of a remote Video object.
type VideoPayload struct {
	AtContext    any           `json:"@context,omitempty"`
	ID           string        `json:"id"`
	Type         string        `json:"type"`
	Name         string        `json:"name"`
	Content      string        `json:"content,omitempty"`
	AttributedTo []Attribution `json:"attributedTo,omitempty"`
	Published    string        `json:"published,omitempty"`
	To           []string      `json:"to,omitempty"`
	Cc           []string      `json:"cc,omitempty"`
	Shares       string        `json:"shares,omitempty"`
}

// Attribution entries may point at the channel (Group) and the account
// (Person); only the id and type matter to us.
type Attribution struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// CommentPayload is the shape of a remote comment Note.
type CommentPayload struct {
	AtContext    any    `json:"@context,omitempty"`
	ID           string `json:"id"`
	Type         string `json:"type"`
	Content      string `json:"content"`
	InReplyTo    string `json:"inReplyTo,omitempty"`
	AttributedTo string `json:"attributedTo"`
	Published    string `json:"published,omitempty"`
}

// PlaylistPayload is the shape of a remote Playlist object.
type PlaylistPayload struct {
	AtContext    any           `json:"@context,omitempty"`
	ID           string        `json:"id"`
	Type         string        `json:"type"`
	Name         string        `json:"name"`
	AttributedTo []Attribution `json:"attributedTo,omitempty"`
	OrderedItems []string      `json:"orderedItems,omitempty"`
}

// Tombstone marks a deleted remote object.
type Tombstone struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	FormerType string `json:"formerType,omitempty"`
}
