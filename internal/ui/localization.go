package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeyWAVFiles           = "wav_files"
	KeySelectFiles        = "select_files"
	KeyAddFile            = "add_file"
	KeySelectFolder       = "select_folder"
	KeyNoFilesSelected    = "no_files_selected"
	KeyFilesSelectedCount = "files_selected_count"
	KeyOutputFolder       = "output_folder"
	KeyChooseOutput       = "choose_output"
	KeyClearOutput        = "clear_output"
	KeyBesideSource       = "beside_source"
	KeyQuality            = "quality"
	KeyConvert            = "convert"
	KeyLog                = "log"
	KeyStatusReady        = "status_ready"
	KeyStatusConverting   = "status_converting"
	KeyStatusFinished     = "status_finished"
	KeySettings           = "settings"
	KeyEncoderCommand     = "encoder_command"
	KeySave               = "save"
	KeyCancel             = "cancel"

	// Log lines
	KeyLogFilesSelected = "log_files_selected"
	KeyLogOutputSet     = "log_output_set"
	KeyLogOutputCleared = "log_output_cleared"
	KeyLogStarted       = "log_started"
	KeyLogJobOK         = "log_job_ok"
	KeyLogJobError      = "log_job_error"
	KeyLogFinished      = "log_finished"
	KeyLogSettingsSaved = "log_settings_saved"

	// Notices
	KeyNoticeNoFilesTitle       = "notice_no_files_title"
	KeyNoticeNoFiles            = "notice_no_files"
	KeyNoticeEncoderTitle       = "notice_encoder_title"
	KeyNoticeEncoder            = "notice_encoder"
	KeyNoticeBusyTitle          = "notice_busy_title"
	KeyNoticeBusy               = "notice_busy"
	KeyNoticeNoValidFilesTitle  = "notice_no_valid_files_title"
	KeyNoticeNoValidFiles       = "notice_no_valid_files"
	KeyErrorReadingFolder       = "error_reading_folder"
	KeyErrorOutputFolderMissing = "error_output_folder_missing"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// System locale detection is simplified to English
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"es": "Español",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "2MP3 - WAV to MP3 converter",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeyWAVFiles:           "WAV files",
		KeySelectFiles:        "Select files",
		KeyAddFile:            "Add files",
		KeySelectFolder:       "Select folder",
		KeyNoFilesSelected:    "No files selected",
		KeyFilesSelectedCount: "%d file(s) selected",
		KeyOutputFolder:       "Output folder",
		KeyChooseOutput:       "Choose folder",
		KeyClearOutput:        "Clear",
		KeyBesideSource:       "MP3 files are saved next to the original",
		KeyQuality:            "MP3 quality (0 = best)",
		KeyConvert:            "Convert to MP3",
		KeyLog:                "Log",
		KeyStatusReady:        "Ready",
		KeyStatusConverting:   "Converting...",
		KeyStatusFinished:     "Conversion finished",
		KeySettings:           "Settings",
		KeyEncoderCommand:     "Encoder executable",
		KeySave:               "Save",
		KeyCancel:             "Cancel",

		KeyLogFilesSelected: "New files selected for conversion (%d).",
		KeyLogOutputSet:     "Output folder set to: %s",
		KeyLogOutputCleared: "Output folder cleared; MP3 files go next to their source.",
		KeyLogStarted:       "Starting conversion of %d file(s).",
		KeyLogJobOK:         "OK: %s → %s",
		KeyLogJobError:      "ERROR: %s → %s",
		KeyLogFinished:      "Process completed: %d converted, %d failed (%s).",
		KeyLogSettingsSaved: "Settings saved: encoder %s, quality %d.",

		KeyNoticeNoFilesTitle:       "No files",
		KeyNoticeNoFiles:            "Select at least one WAV file to convert.",
		KeyNoticeEncoderTitle:       "ffmpeg not found",
		KeyNoticeEncoder:            "The '%s' executable was not found. Make sure it is installed and available on the PATH.",
		KeyNoticeBusyTitle:          "Conversion in progress",
		KeyNoticeBusy:               "A conversion is already running.",
		KeyNoticeNoValidFilesTitle:  "No valid files",
		KeyNoticeNoValidFiles:       "No valid WAV files were selected.",
		KeyErrorReadingFolder:       "Could not read folder",
		KeyErrorOutputFolderMissing: "The output folder does not exist",
	}

	// Spanish texts
	l.texts["es"] = map[string]string{
		KeyAppTitle:           "2MP3 - Convertidor WAV a MP3",
		KeyFile:               "Archivo",
		KeyLanguage:           "Idioma",
		KeyWAVFiles:           "Archivos WAV",
		KeySelectFiles:        "Seleccionar archivos",
		KeyAddFile:            "Añadir archivos",
		KeySelectFolder:       "Seleccionar carpeta",
		KeyNoFilesSelected:    "Ningún archivo seleccionado",
		KeyFilesSelectedCount: "%d archivo(s) seleccionado(s)",
		KeyOutputFolder:       "Carpeta de salida",
		KeyChooseOutput:       "Elegir carpeta",
		KeyClearOutput:        "Quitar",
		KeyBesideSource:       "Se guardarán junto al archivo original",
		KeyQuality:            "Calidad MP3 (0 = mejor)",
		KeyConvert:            "Convertir a MP3",
		KeyLog:                "Registro",
		KeyStatusReady:        "Listo",
		KeyStatusConverting:   "Convirtiendo...",
		KeyStatusFinished:     "Conversión finalizada",
		KeySettings:           "Preferencias",
		KeyEncoderCommand:     "Ejecutable del codificador",
		KeySave:               "Guardar",
		KeyCancel:             "Cancelar",

		KeyLogFilesSelected: "Se seleccionaron nuevos archivos para convertir (%d).",
		KeyLogOutputSet:     "Carpeta de salida establecida en: %s",
		KeyLogOutputCleared: "Carpeta de salida eliminada; los MP3 se guardarán junto al original.",
		KeyLogStarted:       "Iniciando conversión de %d archivo(s).",
		KeyLogJobOK:         "OK: %s → %s",
		KeyLogJobError:      "ERROR: %s → %s",
		KeyLogFinished:      "Proceso completado: %d convertidos, %d con error (%s).",
		KeyLogSettingsSaved: "Preferencias guardadas: codificador %s, calidad %d.",

		KeyNoticeNoFilesTitle:       "Sin archivos",
		KeyNoticeNoFiles:            "Selecciona al menos un archivo WAV para convertir.",
		KeyNoticeEncoderTitle:       "ffmpeg no encontrado",
		KeyNoticeEncoder:            "No se encontró el ejecutable '%s'. Asegúrate de que esté instalado y disponible en el PATH.",
		KeyNoticeBusyTitle:          "Conversión en progreso",
		KeyNoticeBusy:               "Ya hay una conversión en curso.",
		KeyNoticeNoValidFilesTitle:  "Sin archivos válidos",
		KeyNoticeNoValidFiles:       "No se seleccionaron archivos WAV válidos.",
		KeyErrorReadingFolder:       "No se pudo leer la carpeta",
		KeyErrorOutputFolderMissing: "La carpeta de salida no existe",
	}
}
