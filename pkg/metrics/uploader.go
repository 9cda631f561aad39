package metrics

// Uploader is an interface for benchmark result uploading into external
// media (like database or telemetry framework).
type Uploader interface {
	SendResult(Result) error
}

// SendAll uploads every result through the given uploader, stopping at the
// first failure.
func SendAll(uploader Uploader, results []Result) error {
	for _, result := range results {
		if err := uploader.SendResult(result); err != nil {
			return err
		}
	}
	return nil
}
