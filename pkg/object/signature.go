package object

// CommitSigningPayload returns the canonical bytes that are signed for
// a commit: the serialized commit with the signature field cleared.
func CommitSigningPayload(c *Commit) []byte {
	if c == nil {
		return nil
	}
	copyCommit := *c
	copyCommit.Signature = ""
	return MarshalCommit(&copyCommit)
}
