package repositories

type Repos struct {
	Job         JobRepo
	Application ApplicationRepo
	Settings    SettingsRepo
	Rotation    RotationRepo
}

func New() *Repos {
	return &Repos{
		Job:         &DBJobRepo{},
		Application: &DBApplicationRepo{},
		Settings:    &DBSettingsRepo{},
		Rotation:    &DBRotationRepo{},
	}
}
