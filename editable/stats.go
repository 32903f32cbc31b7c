package editable

// Stats summarizes a session for display in an editor status bar.
type Stats struct {
	FileDefinitions int  `json:"fileDefinitions"`
	EmbeddedAssets  int  `json:"embeddedAssets"`
	TotalAssetBytes int  `json:"totalAssetBytes"`
	Variants        int  `json:"variants"`
	LightSources    int  `json:"lightSources"`
	Modified        bool `json:"modified"`
	HistoryDepth    int  `json:"historyDepth"`

	// AssetDigests maps each embedded asset key to its blake3 hex digest.
	AssetDigests map[string]string `json:"assetDigests,omitempty"`
}

// Stats computes a snapshot of the session's size and state.
func (s *Session) Stats() Stats {
	st := Stats{
		FileDefinitions: len(s.Product.GeneralDefinitions.Files.File),
		EmbeddedAssets:  len(s.assets),
		Modified:        s.modified,
		HistoryDepth:    len(s.history),
	}
	if len(s.assets) > 0 {
		st.AssetDigests = make(map[string]string, len(s.assets))
	}
	for key, data := range s.assets {
		st.TotalAssetBytes += len(data)
		st.AssetDigests[key] = digest(data)
	}
	if vs := s.Product.ProductDefinitions.Variants; vs != nil {
		st.Variants = len(vs.Variant)
	}
	if ls := s.Product.GeneralDefinitions.LightSources; ls != nil {
		st.LightSources = len(ls.FixedLightSource) + len(ls.ChangeableLightSource)
	}
	return st
}
