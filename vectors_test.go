package stribog

import "encoding/hex"

// standardVectors are the examples of GOST R 34.11-2012 appendix A, also
// published in RFC 6986 section 10.
var standardVectors = []struct {
	name    string
	message string
	hash256 string
	hash512 string
}{
	{
		name: "M1",
		message: "" +
			"32313039383736353433323130393837" +
			"36353433323130393837363534333231" +
			"30393837363534333231303938373635" +
			"343332313039383736353433323130",
		hash256: "00557be5e584fd52a449b16b0251d05d27f94ab76cbaa6da890b59d8ef1e159d",
		hash512: "" +
			"486f64c1917879417fef082b3381a4e211c324f074654c38823a7b76f830ad00" +
			"fa1fbae42b1285c0352f227524bc9ab16254288dd6863dccd5b9f54a1ad0541b",
	},
	{
		name: "M2",
		message: "" +
			"fbe2e5f0eee3c820fbeafaebef20fffb" +
			"f0e1e0f0f520e0ed20e8ece0ebe5f0f2" +
			"f120fff0eeec20f120faf2fee5e2202c" +
			"e8f6f3ede220e8e6eee1e8f0f2d1202c" +
			"e8f0f2e5e220e5d1",
		hash256: "508f7e553c06501d749a66fc28c6cac0b005746d97537fa85d9e40904efed29d",
		hash512: "" +
			"28fbc9bada033b1460642bdcddb90c3fb3e56c497ccd0f62b8a2ad4935e85f03" +
			"7613966de4ee00531ae60f3b5a47f8dae06915d5f2f194996fcabf2622e6881e",
	},
}

// vectors pin digests of the message (i+1) % 251 for lengths around the
// block boundaries.
var vectors = []struct {
	inputLen int
	hash256  string
	hash512  string
}{
	{
		inputLen: 0,
		hash256:  "bbe19c8d2025d99f943a932a0b365a822aa36a4c479d22cc02c8973e219a533f",
		hash512: "" +
			"8a1a1c4cbf909f8ecb81cd1b5c713abad26a4cac2a5fda3ce86e352855712f36" +
			"a7f0be98eb6cf51553b507b73a87e97946aebc29859255049f86aa09a25d948e",
	},
	{
		inputLen: 1,
		hash256:  "a4e986a4f764ed5eb08f1f3979a3cecff284f89643808c5c4ae63044912c55c0",
		hash512: "" +
			"a9749528edb5b3e76208cd15c70ed6cb5aaf14bf848e2f6d954c9e08e04d6111" +
			"f530f9a28fecced76311d6c6a709c8ed50ac6b855f2d98af5ce17be5a4d3857c",
	},
	{
		inputLen: 63,
		hash256:  "31b729e633b914d31e7c017905932855a8d50a2d75b8c7c18a9b7d438ed67ae4",
		hash512: "" +
			"5df5eed91f6feed7a84ba7d8b173f32ae2e556cd55d649709fb38eb0cfd6c1b9" +
			"e0a1ec32627b92610d67dbfd9a5246c1e58822cc00ad4f2f409321013f83f0e4",
	},
	{
		inputLen: 64,
		hash256:  "c628b251e3a1eda52f0391ea4334ebd12d9897c7054c1628663b92e51fe7fe5e",
		hash512: "" +
			"b22c81aba1ae64be370edfbe4e78628c3cf84cd824719f5e920a441668a616cc" +
			"d224b6ba9e3453278e0078afe7fcf8ff3fad54ebe482765e389a6945fbf40da3",
	},
	{
		inputLen: 65,
		hash256:  "758a327228881ce146fd8fa9a004cbc447a3faf1e082cda20ca6317a244dc2f1",
		hash512: "" +
			"e7dabbedb6fb52580ad0732eae0959c32d91147aa3ddbf19dce7549f4481ee44" +
			"70a1ed4eb24f8497ac8299cc72858934204a3855b82992f1c533285cd6f2de4c",
	},
	{
		inputLen: 127,
		hash256:  "8d631f0f0c2fff8de91df5f93a58e37b3819a44972d54b8fb20253c1412cfcbd",
		hash512: "" +
			"cc66a51cd888041f02420529633887082a9c531373f86f6f57458d66d20ae326" +
			"8d5c0067a24cb93306122641ba246261a5ef5d5306417eacfbf9dd0c07daec10",
	},
	{
		inputLen: 128,
		hash256:  "ef18e515cd0518e6d55dcd3c6dde40fdbad3df46a388e08d69c8775d411e0a4d",
		hash512: "" +
			"04dba32ec636db50260e67ad6e5c475d6eafd450652445c8ab2bab4f6d48e08a" +
			"853cd2386488d44674e53d579304ddf68d6c1dfba82b5033940be40e6e95f339",
	},
	{
		inputLen: 129,
		hash256:  "7adabd12a2b03c11b6d5c0571676454f23f9831218650205761beff4b221cb7c",
		hash512: "" +
			"ecd8b65ab91b13b985bd369096189f169904b76642cd1202b3223181667ab5a0" +
			"12f9639e33f708c9e3813b8ab22f1c2712e52527f5b1f005c16dcfaeabee39a5",
	},
	{
		inputLen: 1000,
		hash256:  "e6b8a741cc1f93d4b6eff1c070c418ad73bdf2185176093f7efed491ee672e3a",
		hash512: "" +
			"0d63a3c4de35b5b272443b4b35b162e1cc6c2356365615a3e80827b0488ec504" +
			"4a2a2a12d15d0ad2f708171afb9bea887dee5d82225d23cb3b74a6bf86b85121",
	},
}

func patternInput(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte((i + 1) % 251)
	}
	return out
}

func mustDecode(s string) []byte {
	out, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return out
}
