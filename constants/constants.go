package constants

const (
	SidecarName    = ".picasa.ini"
	OriginalsDir   = ".picasaoriginals"
	StarMarker     = "star=yes"
	CommentPrefix  = ";"
	OutputFileMode = 0644
)
