package fanbox

// APIResponse wraps every fanbox API payload in a "body" envelope.
type APIResponse struct {
	Body ListingBody `json:"body"`
}

type ListingBody struct {
	Items   []Item `json:"items"`
	NextURL string `json:"nextUrl"`
}

type Item struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Type              string   `json:"type"`
	PublishedDatetime string   `json:"publishedDatetime"`
	User              User     `json:"user"`
	Body              *APIBody `json:"body"`
}

type User struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
}

// APIBody carries both body shapes: flat text/html and the block list with
// its sibling lookup maps.
type APIBody struct {
	Text   string     `json:"text"`
	HTML   string     `json:"html"`
	Images []APIImage `json:"images"`
	Files  []APIFile  `json:"files"`
	Blocks []APIBlock `json:"blocks"`

	ImageMap map[string]APIImage `json:"imageMap"`
	FileMap  map[string]APIFile  `json:"fileMap"`
	EmbedMap map[string]APIEmbed `json:"embedMap"`
}

type APIImage struct {
	ID          string `json:"id"`
	Extension   string `json:"extension"`
	OriginalURL string `json:"originalUrl"`
}

type APIFile struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Extension string `json:"extension"`
	URL       string `json:"url"`
}

type APIBlock struct {
	Type    string `json:"type"`
	Text    string `json:"text"`
	ImageID string `json:"imageId"`
	FileID  string `json:"fileId"`
	EmbedID string `json:"embedId"`
}

type APIEmbed struct {
	ID              string `json:"id"`
	ServiceProvider string `json:"serviceProvider"`
	ContentID       string `json:"contentId"`
}

// CreatorResponse is the creator profile payload.
type CreatorResponse struct {
	Body struct {
		Creator struct {
			User User `json:"user"`
		} `json:"creator"`
	} `json:"body"`
}
