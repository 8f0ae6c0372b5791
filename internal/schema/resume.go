package schema

// Resume returns the expected shape of a resume document. The tree is built
// fresh on each call so callers cannot mutate shared state; it is otherwise
// constant for the lifetime of the process.
func Resume() Node {
	str := Scalar{Kinds: []Kind{String}}
	boolean := Scalar{Kinds: []Kind{Bool}}
	// Dates are commonly written as bare years (2022) or free text ("Present").
	date := Scalar{Kinds: []Kind{Int, String}}
	strList := Sequence{Elem: str}

	return Mapping{Fields: []Field{
		{Name: "editing", Schema: boolean},
		{Name: "debug", Schema: boolean},
		{Name: "basic", Schema: Mapping{Fields: []Field{
			{Name: "name", Schema: str},
			{Name: "address", Schema: str},
			{Name: "email", Schema: str},
			{Name: "phone", Schema: str},
			{Name: "websites", Schema: strList},
		}}},
		{Name: "objective", Schema: str},
		{Name: "education", Schema: Sequence{Elem: Mapping{Fields: []Field{
			{Name: "school", Schema: str},
			{Name: "degrees", Schema: Sequence{Elem: Mapping{Fields: []Field{
				{Name: "names", Schema: strList},
			}}}},
		}}}},
		{Name: "experiences", Schema: Sequence{Elem: Mapping{Fields: []Field{
			{Name: "company", Schema: str},
			{Name: "location", Schema: str},
			{Name: "titles", Schema: Sequence{Elem: Mapping{Fields: []Field{
				{Name: "name", Schema: str},
				{Name: "startdate", Schema: date},
				{Name: "enddate", Schema: date},
			}}}},
			{Name: "highlights", Schema: strList},
		}}}},
		{Name: "skills", Schema: Sequence{Elem: Mapping{Fields: []Field{
			{Name: "category", Schema: str},
			{Name: "skills", Schema: strList},
		}}}},
	}}
}
