package encoder

// Package encoder wraps the external command-line encoder (ffmpeg) that does
// the actual WAV to MP3 transcoding. It only knows how to check that the tool
// is reachable and how to run it once for a source and destination pair.
