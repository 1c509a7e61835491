package main

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/wav2mp3/internal/audio"
	"github.com/ytget/wav2mp3/internal/config"
	"github.com/ytget/wav2mp3/internal/convert"
	"github.com/ytget/wav2mp3/internal/encoder"
	"github.com/ytget/wav2mp3/internal/model"
	"github.com/ytget/wav2mp3/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID = "com.ytget.wav2mp3"

	WindowWidth  = 640
	WindowHeight = 480
)

func main() {
	log.Printf("2MP3 v%s starting...", version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewConverterTheme())

	myWindow := myApp.NewWindow("")
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings()
	enc := encoder.NewFFmpeg(settings.GetEncoderCommand(), settings.GetQuality())
	state := model.NewState()

	driver := convert.NewDriver(state, enc)
	driver.SetInspector(audio.Inspector{})

	// Create and setup UI
	rootUI := ui.NewRootUI(myWindow, settings, state, driver, enc)
	rootUI.SetVersion(version)

	myWindow.ShowAndRun()
}
