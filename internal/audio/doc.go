package audio

// Package audio reads just enough of the files on either side of a
// conversion to describe them: the WAV header of a source and the metadata
// container of the written MP3. Transcoding itself is the encoder's job.
