package poster

// Poster is a single job listing: bilingual text, an optional banner image
// reference and a set of optional contact fields. The banner value is either
// a full URL (remote storage) or a bare filename under the uploads directory.
type Poster struct {
	ID                int64  `json:"id"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	TitleKh           string `json:"titleKh,omitempty"`
	DescriptionKh     string `json:"descriptionKh,omitempty"`
	ApplyButtonText   string `json:"applyButtonText,omitempty"`
	ApplyButtonTextKh string `json:"applyButtonTextKh,omitempty"`
	Banner            string `json:"banner,omitempty"`
	ApplyLink         string `json:"applyLink,omitempty"`
	Phone             string `json:"phone,omitempty"`
	Telegram          string `json:"telegram,omitempty"`
	Facebook          string `json:"facebook,omitempty"`
	Email             string `json:"email,omitempty"`
	CreatedAt         string `json:"createdAt"`
}

// Fields carries the caller-supplied attributes of a new poster. Identity and
// creation time are assigned by the repository.
type Fields struct {
	Title             string `json:"title" binding:"required"`
	Description       string `json:"description" binding:"required"`
	TitleKh           string `json:"titleKh"`
	DescriptionKh     string `json:"descriptionKh"`
	ApplyButtonText   string `json:"applyButtonText"`
	ApplyButtonTextKh string `json:"applyButtonTextKh"`
	Banner            string `json:"banner"`
	ApplyLink         string `json:"applyLink"`
	Phone             string `json:"phone"`
	Telegram          string `json:"telegram"`
	Facebook          string `json:"facebook"`
	Email             string `json:"email"`
}

func (f Fields) record() Poster {
	return Poster{
		Title:             f.Title,
		Description:       f.Description,
		TitleKh:           f.TitleKh,
		DescriptionKh:     f.DescriptionKh,
		ApplyButtonText:   f.ApplyButtonText,
		ApplyButtonTextKh: f.ApplyButtonTextKh,
		Banner:            f.Banner,
		ApplyLink:         f.ApplyLink,
		Phone:             f.Phone,
		Telegram:          f.Telegram,
		Facebook:          f.Facebook,
		Email:             f.Email,
	}
}

// Patch is a shallow merge over an existing poster: only fields present in
// the request overwrite; absent fields are preserved, never cleared. The id
// and creation timestamp are not patchable.
type Patch struct {
	Title             *string `json:"title"`
	Description       *string `json:"description"`
	TitleKh           *string `json:"titleKh"`
	DescriptionKh     *string `json:"descriptionKh"`
	ApplyButtonText   *string `json:"applyButtonText"`
	ApplyButtonTextKh *string `json:"applyButtonTextKh"`
	Banner            *string `json:"banner"`
	ApplyLink         *string `json:"applyLink"`
	Phone             *string `json:"phone"`
	Telegram          *string `json:"telegram"`
	Facebook          *string `json:"facebook"`
	Email             *string `json:"email"`
}

// Apply merges the patch into dst.
func (p Patch) Apply(dst *Poster) {
	set := func(field *string, v *string) {
		if v != nil {
			*field = *v
		}
	}
	set(&dst.Title, p.Title)
	set(&dst.Description, p.Description)
	set(&dst.TitleKh, p.TitleKh)
	set(&dst.DescriptionKh, p.DescriptionKh)
	set(&dst.ApplyButtonText, p.ApplyButtonText)
	set(&dst.ApplyButtonTextKh, p.ApplyButtonTextKh)
	set(&dst.Banner, p.Banner)
	set(&dst.ApplyLink, p.ApplyLink)
	set(&dst.Phone, p.Phone)
	set(&dst.Telegram, p.Telegram)
	set(&dst.Facebook, p.Facebook)
	set(&dst.Email, p.Email)
}
